// Package atlas provides types, interfaces, and helpers for working with the
// Atlas headless CMS API.
//
// # Overview
//
// The atlas package defines the domain types (Content, Asset, User, Account,
// Webhook, Model, ...) and the interfaces of the resource clients. A concrete
// implementation is provided by the atlasclient package, which wires
// configuration, the codec and the transport.
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/atlas-cms/atlas-go/pkg/atlas"
//	  "github.com/atlas-cms/atlas-go/pkg/atlasclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := atlasclient.New(&atlas.Config{BaseURL: "https://cms.example.com", APIKey: "key"})
//	  if err != nil { log.Fatal(err) }
//
//	  posts, err := cli.Contents().List(ctx, "posts", &atlas.ContentsQuery{
//	    Filters: atlas.NewFilterBuilder().Add("title", atlas.FilterContains, "go"),
//	  })
//	  if err != nil { log.Fatal(err) }
//	  _ = posts
//	}
//
// # Authentication
//
// Requests authenticate with the configured API key. A token obtained from a
// login can be used for a single call with WithToken, or registered with
// Client.UseToken for the next request only.
//
// # Errors
//
// Any response other than 200 OK is returned as *APIError, classified by
// status code into an ErrorKind. Helpers such as IsNotFound, IsUnauthorized
// and IsValidation make it easy to branch on common cases, and errors.Is
// matches the sentinels ErrNotFound, ErrUnauthorized, and so on. Failures
// without a response are returned as *TransportError and bodies that do not
// match the expected shape as *DecodeError.
package atlas
