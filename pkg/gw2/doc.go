// Package gw2 provides the core of a typed client for the Guild Wars 2 REST
// API: session configuration, request descriptions, endpoint descriptors and
// the error taxonomy shared by every call.
//
// # Endpoints
//
// An Endpoint is a typed handle on a Descriptor. Its Kind decides which
// operations are available:
//
//	KindNoID        Get
//	KindIDList      Get, GetByIDs, GetAll
//	KindIDPair      Get, GetByIDPairs, GetAll
//	KindMultiParam  Get, GetByParams, GetAll
//
// Operations take a Requester, normally a *gw2client.Client:
//
//	client := gw2client.New(gw2.NewConfig().SetLanguage(gw2.LanguageFrench))
//
//	worlds, err := v2.Worlds.GetByIDs(ctx, client, "1001", "1002")
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Errors
//
// Every failure is an *Error with a Kind. Match kinds with the Is* helpers or
// errors.Is against the sentinels:
//
//	if errors.Is(err, gw2.ErrForbidden) {
//		// the key lacks a permission
//	}
//
// Requests are made exactly once; nothing is retried or cached.
package gw2
