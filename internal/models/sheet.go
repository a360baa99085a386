package models

// Document is a named cheat sheet and its raw text
type Document struct {
	Name string // Identifier, e.g. "basics"
	Body string // Raw text exactly as bundled
}

// Section is a titled, contiguous span of a document
type Section struct {
	Title   string // Text after the first ". " on the header line
	Content string // Verbatim lines of the section, markers included
}

// ParsedDocument holds the sections recovered from a Document, in source order
type ParsedDocument struct {
	Sections []Section
}

// Len returns the number of sections
func (p *ParsedDocument) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Sections)
}

// Section returns the section at the given 1-based number
func (p *ParsedDocument) Section(number int) (Section, bool) {
	if number < 1 || number > p.Len() {
		return Section{}, false
	}
	return p.Sections[number-1], true
}

// Clone returns a deep copy so cached documents can be handed out safely
func (p *ParsedDocument) Clone() *ParsedDocument {
	if p == nil {
		return nil
	}
	sections := make([]Section, len(p.Sections))
	copy(sections, p.Sections)
	return &ParsedDocument{Sections: sections}
}
