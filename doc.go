// Package stocksim is an in-memory stock trading simulator.
//
// A [Ledger] is one trading session. It owns:
//   - a catalog of instruments whose prices move randomly on each [Ledger.Tick],
//   - a cash balance that never goes negative,
//   - holdings valued at an average cost,
//   - an append-only log of executed transactions.
//
// Trades are immediate market orders executed at the instrument's current
// price, and only while the market is open according to the ledger [Hours].
// Callers pass the current time explicitly, and the random source of ticks can
// be seeded, so that sessions are reproducible.
//
// Nothing is persisted: a ledger lives as long as the process.
package stocksim
