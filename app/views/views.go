// Package views holds the single page that drives the JSON API from the browser.
package views

import _ "embed"

//go:embed index.html
var Index []byte
