package drift

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KonamiSequence is the classic easter-egg input sequence.
var KonamiSequence = []ebiten.Key{
	ebiten.KeyArrowUp, ebiten.KeyArrowUp,
	ebiten.KeyArrowDown, ebiten.KeyArrowDown,
	ebiten.KeyArrowLeft, ebiten.KeyArrowRight,
	ebiten.KeyArrowLeft, ebiten.KeyArrowRight,
	ebiten.KeyB, ebiten.KeyA,
}

// KeySequence watches just-pressed keys for a fixed sequence and fires a
// callback on a full match. A wrong key resets the match, counting the wrong
// key as a fresh first press when it starts the sequence over.
type KeySequence struct {
	sequence []ebiten.Key
	onMatch  func()
	progress int
	keyBuf   []ebiten.Key
}

// NewKeySequence creates a detector for the given sequence. An empty sequence
// selects KonamiSequence. onMatch may be nil.
func NewKeySequence(sequence []ebiten.Key, onMatch func()) *KeySequence {
	if len(sequence) == 0 {
		sequence = KonamiSequence
	}
	return &KeySequence{sequence: sequence, onMatch: onMatch}
}

// Progress returns how many keys of the sequence have matched so far.
func (s *KeySequence) Progress() int {
	return s.progress
}

// Feed advances the detector with one pressed key and reports whether this
// key completed the sequence.
func (s *KeySequence) Feed(key ebiten.Key) bool {
	if key == s.sequence[s.progress] {
		s.progress++
		if s.progress == len(s.sequence) {
			s.progress = 0
			if s.onMatch != nil {
				s.onMatch()
			}
			return true
		}
		return false
	}
	// Mismatch: the key may still begin a new attempt.
	if key == s.sequence[0] {
		s.progress = 1
	} else {
		s.progress = 0
	}
	return false
}

// Update feeds all keys just pressed this frame into the detector.
func (s *KeySequence) Update() {
	s.keyBuf = inpututil.AppendJustPressedKeys(s.keyBuf[:0])
	for _, k := range s.keyBuf {
		s.Feed(k)
	}
}
