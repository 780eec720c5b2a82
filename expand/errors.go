package expand

import "errors"

// ErrNoOrigin indicates the origin PathLocation has no candidate edges to
// seed the search from.
var ErrNoOrigin = errors.New("expand: origin has no candidate edges")

// ErrNilCollaborator indicates a required collaborator (GraphReader,
// Costing, or LabelSet) was not supplied.
var ErrNilCollaborator = errors.New("expand: reader, costing, and labelSet are required")
