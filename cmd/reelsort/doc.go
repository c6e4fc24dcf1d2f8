// Command reelsort organizes a movie library: it renames movie folders to
// canonical titles, fetches metadata and posters, files each movie under its
// primary genre, and records every run in a local ledger.
package main
