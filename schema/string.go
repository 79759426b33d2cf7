package schema

type String string

func (s String) Citations() []Citation {
	return nil
}

func (s String) SetCitations(v []Citation) {
}

func (s String) String() string {
	return string(s)
}

func (s *String) Unmarshal(bs []byte) error {
	*s = String(bs)
	return nil
}
