// Package commands implements the bingo CLI.
//
// Commands
//
//   - serve: HTTP JSON API plus the embedded browser front-end
//   - play:  full-screen terminal game
//   - card:  print freshly generated, mutually distinct cards
//
// Every command reads BINGO_* environment variables first; flags override
// them.
package commands
