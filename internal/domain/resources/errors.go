package resources

import "errors"

// ErrMissingID se devuelve sin llamar al backend cuando falta el id.
var ErrMissingID = errors.New("resource id is required")
