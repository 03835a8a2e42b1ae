// Package webfetch provides a ready-made tool that fetches web pages and
// converts their HTML content to Markdown for consumption by the model.
package webfetch
