package detector

// DetectColorsFor exposes the detection logic with an injected terminal state and environment.
var DetectColorsFor = detectColors
