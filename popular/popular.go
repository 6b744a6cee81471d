package popular

// Word is a word of the counted text together with the number of times it was seen so far.
// Text is a slice of the original text, so the text must stay alive while Word is in use.
type Word struct {
	Text string

	Count uint
}

// Found reports whether w holds a word. The zero Word means "no word yet".
func (w Word) Found() bool {
	return w.Count > 0
}

// State keeps the leader and the runner-up among the words seen so far.
// The zero value is ready to use.
type State struct {
	first  Word
	second Word
}

// Update ranks current against the two best words.
// Equal counts never displace the incumbent, so the first word to reach a count keeps it.
func (s *State) Update(current Word) {
	if current.Count > s.first.Count {
		s.second = s.first
		s.first = current
	} else if current.Count > s.second.Count {
		s.second = current
	}
}

func (s *State) First() Word {
	return s.first
}

func (s *State) Second() Word {
	return s.second
}
