// Package mailer sends transactional order-confirmation email through
// Postmark, with a development sender that logs instead of sending.
//
// The Sender interface is the only thing order intake depends on, so tests
// and local runs swap the Postmark client for the dev sender without
// touching handler code. Sending is always best-effort from the caller's
// point of view: a lost confirmation never rolls back an accepted order.
package mailer
