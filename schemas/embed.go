// Package schemas embeds the JSON Schema documents describing portfolio
// content files, so validation does not depend on the working directory.
package schemas

import "embed"

// FS holds every *.schema.json file.
//
//go:embed *.schema.json
var FS embed.FS

// PortfolioSchema is the file name of the portfolio content schema within FS.
const PortfolioSchema = "portfolio.schema.json"
