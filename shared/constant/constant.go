package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID    contextKey = "user_id"
	ContextKeyUserEmail contextKey = "user_email"
	ContextKeyUserRole  contextKey = "user_role"
	ContextKeyTokenID   contextKey = "token_id"
)

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

const (
	RequestParamPage     = "page"
	RequestParamLimit    = "limit"
	RequestParamActive   = "active"
	RequestParamFeatured = "featured"
	RequestParamCategory = "category"
	RequestParamStatus   = "status"
)

const (
	RequestParamID   = "id"
	RequestParamSlug = "slug"
	RequestMaxMemory = 10 << 20 // 10 MB
)

const (
	DefaultValuePage = 1
)

const (
	FieldID        = "id"
	FieldCreatedAt = "created_at"
	FieldCreatedBy = "created_by"
	FieldUpdatedAt = "updated_at"
	FieldUpdatedBy = "updated_by"
	FieldSortOrder = "sort_order"
	FieldIsActive  = "is_active"
	FieldSlug      = "slug"
)

const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeFkViolation     = "23503"
)

const (
	DateFormat    = time.RFC3339
	DayFormat     = time.DateOnly
	HoursInADay   = 24
	ValueTrue     = "true"
	ValueFalse    = "false"
	DefaultSystem = "system"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"
	OtelExternalScopeName   = "external"

	OtelQueryAttributeKey       = "query"
	OtelFailureCodeAttributeKey = "failure.code"
	OtelS3ScopeName             = "s3"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderRetryAfter         = "Retry-After"
)

const (
	ContentTypeJSON              = "application/json"
	ContentTypeMultipartFormData = "multipart/form-data"
	ContentTypeJPEG              = "image/jpeg"
	ContentTypePNG               = "image/png"
	ContentTypeWebP              = "image/webp"
	FormFile                     = "file"
)

const (
	MaxUploadSizeMB    = 5
	MaxUploadSizeBytes = MaxUploadSizeMB << 20 // 5,242,880 bytes
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
	ResponseErrorValidation           = "Validation failed"
	ResponseErrorInternal             = "Internal server error"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)
