// Package models defines the core domain models for Groupledger.
//
// # Models
//
//   - Member: a person inside a group, identified by the auth uid
//   - Group: a set of members with one admin and an invite code
//   - JoinRequest: a pending/approved/rejected request to enter a group
//   - GroupExpense: a ledger entry shared by the participants of a group
//   - PersonalExpense: a ledger entry owned by a single user
//   - User: a registered account (the source of the acting uid)
//
// # Design Principles
//
//  1. Models are plain values. Rules live in the ledger, calculator and membership packages.
//  2. Relationships use ID strings, never pointers.
//  3. Group.MemberIDs is derived from Group.Members and must always match it.
//  4. TransactionType is a closed set; unknown values never reach the calculators.
package models
