// Copyright 2016-2018, Pulumi Corporation.  All rights reserved.

package version

// Version is the current qwest version.  It is overridden at link time for release builds.
var Version = "0.1.0-dev"
