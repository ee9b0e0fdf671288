// Package slippstream is a client for the Slippi game-state stream
// ("SlippiComm") served by Slippi Dolphin and the Slippi Nintendont fork.
//
// The stream runs over ENet, a reliable ordered protocol on top of UDP. A
// Client owns a single session: Connect starts a worker goroutine that
// dials the console, waits for the link to come up and sends the handshake;
// from then on the worker forwards every non-empty packet, in order, to an
// inbox the caller drains with Dispatch.
//
// # Protocol Overview
//
// Every packet is a JSON envelope with a "type" discriminant:
//
//	{"type":"connect_request","cursor":0}            client -> console
//	{"type":"connect_reply","nick":"...","version":"...","cursor":0}
//	{"type":"game_event","payload":"<base64>","cursor":12,"next_cursor":13}
//	{"type":"menu_event","payload":"<base64>"}
//	{"type":"start_game"}
//	{"type":"end_game"}
//
// Game and menu event payloads carry raw replay events (see EventType). This
// package decodes only the envelope; turning payloads into frame snapshots is
// left to the caller.
//
// # Basic Usage
//
//	client := slippstream.NewClient(slippstream.DefaultConfig())
//	if !client.Connect(ctx) {
//	    log.Fatal(client.Err())
//	}
//	defer client.Shutdown()
//
//	for {
//	    msg, err := client.Dispatch(true, 16*time.Millisecond)
//	    if errors.Is(err, slippstream.ErrDisconnected) {
//	        break
//	    }
//	    if err != nil {
//	        log.Print(err)
//	        continue
//	    }
//	    if msg == nil {
//	        continue // no new frame yet
//	    }
//	    handle(msg)
//	}
//
// # Cancellation
//
// The worker services the link with a bounded wait (ServiceWait) and checks
// for shutdown between waits. Shutdown therefore returns within roughly one
// wait interval. A stalled link never blocks Dispatch in polling mode.
//
// # Thread Safety
//
// Client methods are safe to call from multiple goroutines, but messages are
// meant to be consumed by one frame loop.
package slippstream
