// Package training selects and sequences cards for a drill session.
//
// A drill works on one list in one direction. SelectPool narrows the list to
// the pairs eligible under a Mode, Picker chooses one of the most overdue
// pairs at random, and Session tracks where the learner is in the
// show/reveal/grade cycle. Everything here is stateless except Session and
// the Picker's random source.
package training
