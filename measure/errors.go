package measure

import "errors"

// ErrNoFiles is returned when the input file list is empty.
var ErrNoFiles = errors.New("measure: input file list is empty")

// ErrUnknownExtension is returned when a listed file's extension is
// neither a recognised CUPT nor JSONL suffix (§6).
var ErrUnknownExtension = errors.New("measure: cannot infer reader from file extension")

// ErrUnknownIndex names an index that the registry does not recognise
// (see IsKnownIndex). No function in this package returns it; an unknown
// --enable_<name> flag is rejected by cmd/diversutils' flag parsing
// (§6: "unrecognised flags are fatal").
var ErrUnknownIndex = errors.New("measure: unknown diversity index")
