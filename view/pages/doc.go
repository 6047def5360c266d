// Package pages holds the server-rendered pages. The game itself is a static
// client; these only cover the case where no client bundle is deployed.
package pages
