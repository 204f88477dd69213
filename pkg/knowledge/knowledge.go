package knowledge

// Entry is one navigable path/instruction string from the knowledge base,
// e.g. "Login -> UmsHome -> Change Password -> Change UMS Password".
type Entry = string

// Chunk is the unit of indexing: a bounded-length window of an Entry that
// keeps a back-reference to its source text for recall.
type Chunk struct {
	Text   string
	Source string
}
