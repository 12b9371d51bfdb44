// Package mailer sends transactional email — signup welcomes and funding
// receipts — behind a provider-agnostic Sender interface. Postmark backs
// production delivery; LogSender writes to the structured log for local
// development so no real mail leaves a dev machine.
package mailer
