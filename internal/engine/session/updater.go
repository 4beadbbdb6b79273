package session

import (
	"context"
	"fmt"

	"go.trai.ch/tsload/internal/core/domain"
	"go.trai.ch/tsload/internal/core/ports"
)

// ApplyDelta brings the file store up to date with changes reported by the build tool.
// Applying the same delta twice leaves the same content in the store.
// A change whose content cannot be read tombstones the file instead of failing.
//
// Watch-driven sessions only mark the program dirty here; the program is refreshed by the next emit.
func (s *Session) ApplyDelta(ctx context.Context, changes []domain.FileChange) {
	ctx, span := s.tracer.Start(ctx, "session.apply_delta", ports.WithAttribute("changes", len(changes)))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, change := range changes {
		name := s.toolchainName(change.Path)
		if name == "" {
			continue
		}

		var changed bool
		switch change.Kind {
		case domain.ChangeRemove:
			changed = s.remove(name)
		default:
			changed = s.write(name, change)
		}
		recordDelta(ctx, change.Kind, changed)
	}
	span.SetAttribute("version", s.version)
}

// write stores the new content of name. Callers hold s.mu.
func (s *Session) write(name string, change domain.FileChange) bool {
	_, known := s.files.Lookup(name)
	if !known && !s.scripts.MatchString(name) {
		return false
	}

	text := change.Text
	if !change.HasText {
		data, err := s.fs.ReadFile(s.diskPath(name))
		if err != nil {
			s.logger.Warn(fmt.Sprintf("could not read %s, marking it removed", s.diskPath(name)))
			return s.remove(name)
		}
		text = string(data)
	}

	if _, changed := s.files.Write(name, text); !changed {
		return false
	}
	s.touch(name, !known)
	return true
}

// remove tombstones name. Graph edges touching name are kept. Callers hold s.mu.
func (s *Session) remove(name string) bool {
	if _, changed := s.files.Remove(name); !changed {
		return false
	}
	s.touch(name, true)
	return true
}

// touch records an observed edit. Callers hold s.mu.
func (s *Session) touch(name string, rootsChanged bool) {
	s.version++
	s.modified[name] = struct{}{}
	if _, ok := s.strategy.(*watchDriven); ok {
		s.dirty = true
		s.newRoots = s.newRoots || rootsChanged
	}
}
