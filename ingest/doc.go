// Package ingest implements the two corpus readers §6 specifies at
// their interface with the core: a CoNLL-U/CUPT tab-separated reader
// and a minimal two-field JSONL reader. Neither is a general-purpose
// parser — the JSONL reader extracts exactly "id" and one configurable
// content key and is explicitly forbidden from becoming a full JSON
// parser (§6: "No full JSON parser is required, only the two fields").
package ingest
