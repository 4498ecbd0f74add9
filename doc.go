// Package ensaios provides the types and computations for tracking a photo
// studio's day: the sessions it shoots, the sale outcome of each session,
// and the derived numbers the team watches during the day. It is designed to
// be local-first and auditable; all records live in plain files on the
// operator's machine.
//
// The core functionalities include:
//   - Book management: recording sessions, sale outcomes (sold, gave up,
//     no-show), split payments, the photographer and seller rosters, and the
//     daily revenue goal.
//   - Day review: a pure computation layer turning the book into today's
//     subsets, per-person totals, rankings, goal progress and payment splits.
//   - Reports: two plain-text reports (partial ranking and final revenue)
//     whose exact formatting is a wire format, distributed verbatim to the
//     team over messaging apps.
//   - Data persistence: one file per collection, JSONL for records, in a
//     human-readable, version-controllable form.
//
// This package serves as the foundational logic for the `cde` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package ensaios
