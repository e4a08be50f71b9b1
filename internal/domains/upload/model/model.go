package model

import "hotel/shared/constant"

const (
	EntityName = "upload"

	MaxSizeMB    = constant.MaxUploadSizeMB
	MaxSizeBytes = constant.MaxUploadSizeBytes
)

// AllowedTypes is the space separated allow-list of sniffed content types.
const AllowedTypes = constant.ContentTypeJPEG + " " + constant.ContentTypePNG + " " + constant.ContentTypeWebP
