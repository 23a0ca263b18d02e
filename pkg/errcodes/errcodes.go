package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	InvalidChartOutput failure.ErrorCode = "InvalidChartOutput"
	InvalidChartFormat failure.ErrorCode = "InvalidChartFormat"
	InvalidDataset     failure.ErrorCode = "InvalidDataset"
	DatasetUnavailable failure.ErrorCode = "DatasetUnavailable"
)
