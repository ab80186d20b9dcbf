// Package payrun turns an ordered stream of per-client transaction records
// (deposits, withdrawals, disputes, resolves, chargebacks) into final account
// balances, enforcing the hold/release semantics disputes impose on funds.
//
// The core pieces:
//   - Account and its Settle method: the state machine that replays an
//     account's buffered operation log into settled balances, including the
//     two-phase dispute protocol (hold on dispute, release on resolve,
//     reverse-and-lock on chargeback).
//   - Store: the uniform get-or-create/put contract the engine runs against,
//     with an in-memory implementation for ordinary inputs and a disk-backed
//     one for datasets larger than available memory. The backend is picked
//     once per run and the transaction-application logic never changes.
//   - Registry: a one-bit-per-id presence set over the 16-bit client domain,
//     driving the finalization enumeration in ascending id order.
//   - Engine: the two-pass orchestration — buffer every operation through the
//     store, then settle and emit every registered account.
//
// All amounts are exact decimals, so total = available + held holds to the
// digit. This package is the foundation of the `prun` command-line tool.
package payrun
