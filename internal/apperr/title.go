package apperr

// Title returns the stable problem-details "title" for err's kind:
// the error type's bare name (e.g. "ValidationError").
func Title(err error) string {
	switch err.(type) {
	case ValidationError:
		return "ValidationError"
	case UnauthorizedError:
		return "UnauthorizedError"
	case ForbiddenError:
		return "ForbiddenError"
	case NotFoundError:
		return "NotFoundError"
	case MethodNotAllowedError:
		return "MethodNotAllowedError"
	case ConflictError:
		return "ConflictError"
	case PreconditionFailedError:
		return "PreconditionFailedError"
	case PayloadTooLargeError:
		return "PayloadTooLargeError"
	case UnsupportedMediaTypeError:
		return "UnsupportedMediaTypeError"
	case PreconditionRequiredError:
		return "PreconditionRequiredError"
	case NotModifiedError:
		return "NotModifiedError"
	default:
		return "InternalError"
	}
}

// Field returns the offending field name for a ValidationError, or ""
// for every other kind.
func Field(err error) string {
	if ve, ok := err.(ValidationError); ok {
		return ve.Field
	}

	return ""
}
