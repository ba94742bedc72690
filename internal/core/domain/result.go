package domain

// FileResult is the outcome of retrieving and parsing one source file.
// Exactly one of Records and Err is meaningful.
type FileResult struct {
	// Path identifies the file within the store.
	Path string

	// Records holds the parsed records in file order.
	Records []Record

	// Skipped counts tuples dropped by best-effort parsing.
	Skipped int

	// Err is the retrieval or parse failure, if any.
	Err error
}

// OK reports whether the file was retrieved and parsed.
func (r FileResult) OK() bool {
	return r.Err == nil
}
