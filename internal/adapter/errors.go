package adapter

import "errors"

var (
	ErrSendingMail      = errors.New("failed to send mail")
	ErrPresigningUpload = errors.New("failed to presign avatar upload")
	ErrLoadingAWSConfig = errors.New("failed to load aws config")
)
