// Package icebreaker is the channel and session engine: sessions and their
// lifecycle, channel membership, the shared activity prompt, the chat log,
// the participation ledger, and the orchestrator that turns observed session
// states into what a connected client sees.
//
// Components talk to the document store through the ports in ports.go and
// to each other through realtime change notifications.
package icebreaker
