// Copyright 2016-2018, Pulumi Corporation.  All rights reserved.

package workspace

import "fmt"

// BookTemplate returns the starter contents written for a freshly created spell-book.
func BookTemplate(name string) string {
	return fmt.Sprintf(`[api]
name = "%s"
base_url = ""

[[request]]
name = "doc"
method = "GET"
path = "/docs"
`, name)
}
