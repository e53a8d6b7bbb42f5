// Package atlasclient provides the primary entry point for constructing an
// Atlas CMS API client that implements the atlas.Client interface.
//
// It layers configuration, endpoint normalization and the HTTP transport on
// top of the resource interfaces and types defined in the atlas package. Most
// applications should import atlasclient to build a client, then use the
// returned atlas.Client to reach the resource clients, for example
// Contents(), Assets(), Users(), Webhooks(), etc.
//
// Quick start
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
//
//	  // The scheme defaults to https and trailing slashes are dropped.
//	  cli, err := atlasclient.NewWithAPIKey("cms.example.com/", "api-key")
//	  if err != nil { log.Fatal(err) }
//
//	  posts, err := cli.Contents().List(ctx, "blog", &atlas.ContentsQuery{
//	    Filters: atlas.NewFilterBuilder().Add("title", atlas.FilterContains, "go"),
//	  })
//	  if err != nil { log.Fatal(err) }
//	  _ = posts
//	}
//
// # Configuration files
//
// NewFromFile reads any format supported by viper (YAML, JSON, TOML, ...)
// with keys base_url, api_key, project_key, http_timeout, retry_max,
// retry_wait_min, retry_wait_max, debug and user_agent. ATLAS_* environment
// variables override the file.
//
// # Helpers
//
// The package also provides the convenience constructors NewWithEndpoint and
// NewWithAPIKey for the common cases.
package atlasclient
