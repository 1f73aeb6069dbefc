package errors

// Error message constants for the tidyuse application
const (
	// File processing errors
	ErrMsgFailedToReadFile   = "failed to read file"
	ErrMsgFailedToParseFile  = "failed to parse file"
	ErrMsgFailedToFormatFile = "failed to format file"
	ErrMsgFailedToWriteFile  = "failed to write file"
	ErrMsgFailedToReadStdin  = "failed to read standard input"

	// Directory processing errors
	ErrMsgFailedToCheckPath     = "failed to check path"
	ErrMsgFailedToFindRustFiles = "failed to find Rust files in directory"
	ErrMsgFilesFailedToProcess  = "%d files failed to process"

	// Unsupported-input assertions
	ErrMsgDecoratedUse = "attributes on use declarations are not supported"
	ErrMsgRootGroup    = "use declarations starting with a bare group are not supported"

	// External formatter errors
	ErrMsgRustfmtFailed = "rustfmt failed"

	// Info/warning messages
	WarnMsgProcessingDirWithoutInPlace = "Warning: Processing directory without --in-place flag. No files will be modified."
	InfoMsgUseInPlaceFlag              = "Use --in-place flag to modify files or specify a single file for stdout output."
	InfoMsgNoRustFilesFound            = "No Rust files found in directory: %s"
	InfoMsgFoundRustFiles              = "Found %d Rust files in directory: %s"
	InfoMsgProcessedFiles              = "Processed: %s"
	InfoMsgErrorProcessing             = "Error processing %s: %v"
	InfoMsgProcessedCount              = "\nProcessed %d files successfully"
	InfoMsgErrorCount                  = ", %d files had errors"
)
