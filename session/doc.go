// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session implements the quiz state machine and the Manager that
drives it.

# States

	Welcome --start(n)--> Quiz --answer x n--> Loading --ok--> Results
	   ^                                          |               |
	   +------------------- fail -----------------+               |
	   +------------------------ restart -------------------------+

Start draws n questions (10, 25 or 50) without replacement. The final
answer scores the quiz, adopts the code's theme and moves to Loading.
Loading accepts no user input. A failed insight exchange, whatever its
kind, clears the quiz, reverts the theme and returns to Welcome with a
retry message. Restart is allowed from every state except Loading.

The transition functions (Start, Answer, Complete, Fail, Restart) mutate a
*models.Session and have no other effects. View renders a session for the
presentation layer; a Results session without a code or report renders as
StateError with a restart action.

# Manager

Manager persists sessions in a store.Store and serialises every
load-transition-save under one lock:

	mgr := session.NewManager(ctx, st, bank, client,
	    session.WithMetrics(m),
	    session.WithTransitionHook(func(id string, from, to models.SessionState) {
	        // ...
	    }),
	)

	view, _ := mgr.Create(ctx)
	view, _ = mgr.Start(ctx, view.ID, 10)
	view, _ = mgr.Answer(ctx, view.ID, 0)

When the final answer arrives, Answer saves the Loading state and returns;
the single insight exchange runs on a goroutine derived from the Manager's
context. Its outcome is applied only if the session is still in Loading.
Wait blocks until all exchanges finish.

A session found in Loading with no exchange in flight in this process is
left alone while it is younger than the orphan threshold (insight timeout
plus OrphanGrace, see WithOrphanAfter), since another replica sharing a SQL
store may own the exchange. Past the threshold, for example after a process
restart, it is failed on the next access so the user can retry.
*/
package session
