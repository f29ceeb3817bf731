// Package models defines the domain records shared by the calculator, the
// storage layer and the RPC services.
//
// # Records
//
//   - User: a person who can pay for or share expenses
//   - Group: a named set of users who split expenses together
//   - Expense: one payment made by a user, with a Split describing who shares it
//   - Balance: a user's derived net position within a group
//   - Settlement: one suggested transfer that reduces outstanding balances
//
// # Relationships
//
// Records reference each other by ID strings, never by pointer. A Group lists
// member user IDs, an Expense names its payer and participants by user ID.
//
// # Derived values
//
// Balance, Settlement and MemberSummary are never stored. They are recomputed
// from the expense list every time they are requested.
//
// # Recorded settlements
//
// When a suggested Settlement is paid, it is stored as an ordinary Expense with
// IsSettlement set and an UnequalSplit crediting the payee. That keeps the
// expense list the single source of truth for balances.
package models
