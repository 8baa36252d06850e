// Package brick implements the core of BrickManager, a small-business
// tracker for second-hand resellers: an inventory of items acquired for
// resale, the sales made on them, and the running business expenses.
//
// The package owns the domain model (Item, Sale, Expense and their closed
// vocabularies), the Ledger that holds the three collections and enforces
// their lifecycle rules, the derived-metrics reports (Summary, monthly
// rollup, expense breakdown), and the JSONL codec used to persist a ledger
// in a store directory.
//
// Rendering lives in the renderer package, the CLI in cmd, and the optional
// generative-AI enrichments in advisor.
package brick
