// Package gw2client provides the primary entry point for constructing a
// Guild Wars 2 API client that implements gw2.Requester.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/gw2api/pkg/gw2"
//	  "github.com/fivetwenty-io/gw2api/pkg/gw2/v2"
//	  "github.com/fivetwenty-io/gw2api/pkg/gw2client"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Anonymous client with the default settings.
//	  client := gw2client.New(nil)
//
//	  build, err := v2.Build.Get(ctx, client)
//	  if err != nil { log.Fatal(err) }
//	  _ = build
//
//	  // Authenticated, localized client.
//	  client = gw2client.New(gw2.NewConfig().
//	    SetAPIKey("XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXXXXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX").
//	    SetLanguage(gw2.LanguageGerman))
//
//	  info, err := v2.TokenInfo.Get(ctx, client)
//	  if err != nil { log.Fatal(err) }
//	  _ = info
//	}
//
// The Config passed to New is read on every call and never modified by the
// client, so settings such as the language may be changed between calls.
package gw2client
