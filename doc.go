// Package lsmodels holds the types shared by the lsmodels command: the
// supported [Provider] values, the [ModelRecord] each listing produces,
// and the two failure kinds, [AuthError] and [ProviderError].
//
// The provider dispatch itself lives in the
// [github.com/spetersoncode/lsmodels/lister] package; the command is
// in cmd/lsmodels.
//
// # Errors
//
// A missing credential is an [AuthError] and is reported before any
// request is made:
//
//	var authErr *lsmodels.AuthError
//	if errors.As(err, &authErr) {
//	    fmt.Println("set", authErr.EnvVar)
//	}
//
// A vendor failure is a [ProviderError] carrying the vendor's message, the
// HTTP status when there was one, and an [ErrorCategory]:
//
//	switch lsmodels.CategoryOf(err) {
//	case lsmodels.ErrorPermanent:
//	    // bad key or missing permission
//	case lsmodels.ErrorUserInput:
//	    // bad region or project
//	}
package lsmodels
