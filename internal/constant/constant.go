package constant

type ctxKey string

const (
	CorrelationIDKey ctxKey = "CorrelationID"
)

// Keys used with gin.Context.Set / Get.
const (
	JWTPayloadKey = "jwtPayload"
	RequestIDKey  = "requestId"
	ValidatedBody = "validatedBody"
)

const (
	CorrelationIDHeader = "X-Correlation-ID"
	RequestIDHeader     = "X-Request-ID"
)
