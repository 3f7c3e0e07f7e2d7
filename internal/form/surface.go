package form

import "sync"

// ElementID identifies an element on the presentation surface.
type ElementID string

const (
	SGPA1          ElementID = "sgpa1"
	SGPA2          ElementID = "sgpa2"
	Credit1        ElementID = "credit1"
	Credit2        ElementID = "credit2"
	SGPA1Error     ElementID = "sgpa1Error"
	SGPA2Error     ElementID = "sgpa2Error"
	CGPADisplay    ElementID = "cgpaDisplay"
	SuccessMessage ElementID = "successMessage"
	SubmitButton   ElementID = "calculateSaveBtn"
	StudentName    ElementID = "studentName"
	Roll           ElementID = "roll"
	StudentNumber  ElementID = "studentNumber"
	SemesterSelect ElementID = "semesterSelect"
	SGPA1Label     ElementID = "sgpa1Label"
	SGPA2Label     ElementID = "sgpa2Label"
	Credit1Label   ElementID = "credit1Label"
	Credit2Label   ElementID = "credit2Label"
)

// TrackedFields are the inputs whose changes re-evaluate the submit gate.
var TrackedFields = []ElementID{
	StudentName, Roll, StudentNumber,
	SGPA1, SGPA2,
	Credit1, Credit2,
	SemesterSelect,
}

// Surface is the presentation layer the controller reads from and writes to.
// The controller never deals with layout; it only reads input values and
// writes text, styles and attributes.
type Surface interface {
	Value(id ElementID) string
	SetValue(id ElementID, value string)
	SetText(id ElementID, text string)
	SetStyle(id ElementID, property, value string)
	SetAttr(id ElementID, name, value string)
	RemoveAttr(id ElementID, name string)
}

type element struct {
	value string
	text  string
	style map[string]string
	attrs map[string]string
}

// MemorySurface is an in-memory Surface. It is safe for concurrent use, so
// timers scheduled by the controller may write to it from other goroutines.
type MemorySurface struct {
	mu       sync.RWMutex
	elements map[ElementID]*element
}

func NewMemorySurface() *MemorySurface {
	return &MemorySurface{elements: make(map[ElementID]*element)}
}

func (s *MemorySurface) get(id ElementID) *element {
	el, ok := s.elements[id]
	if !ok {
		el = &element{style: map[string]string{}, attrs: map[string]string{}}
		s.elements[id] = el
	}
	return el
}

func (s *MemorySurface) Value(id ElementID) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if el, ok := s.elements[id]; ok {
		return el.value
	}
	return ""
}

func (s *MemorySurface) SetValue(id ElementID, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.get(id).value = value
}

// Text returns the text content last written to id.
func (s *MemorySurface) Text(id ElementID) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if el, ok := s.elements[id]; ok {
		return el.text
	}
	return ""
}

func (s *MemorySurface) SetText(id ElementID, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.get(id).text = text
}

// Style returns an inline style property of id.
func (s *MemorySurface) Style(id ElementID, property string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if el, ok := s.elements[id]; ok {
		return el.style[property]
	}
	return ""
}

// SetStyle sets an inline style property. An empty value removes it.
func (s *MemorySurface) SetStyle(id ElementID, property, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	el := s.get(id)
	if value == "" {
		delete(el.style, property)
		return
	}
	el.style[property] = value
}

// Attr returns an attribute of id and whether it is set.
func (s *MemorySurface) Attr(id ElementID, name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	el, ok := s.elements[id]
	if !ok {
		return "", false
	}
	v, ok := el.attrs[name]
	return v, ok
}

func (s *MemorySurface) SetAttr(id ElementID, name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.get(id).attrs[name] = value
}

func (s *MemorySurface) RemoveAttr(id ElementID, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.get(id).attrs, name)
}
