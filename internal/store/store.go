// Package store holds the client-side state containers for each entity
// family. Every operation runs three phases: pending (loading on, error
// cleared), fulfilled (result reconciled into local state), rejected
// (error recorded as a display string). Stores never let an error escape
// as anything other than a readable message, and never touch the network
// except through api.Client.
package store

import (
	"errors"

	"github.com/example/turf-admin/internal/api"
)

// message converts an operation failure to the string the UI renders:
// the API's displayable message when there is one, the store's fixed
// fallback otherwise (decode failures and the like).
func message(err error, fallback string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
