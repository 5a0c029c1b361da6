/*
Package ports defines the driven ports (interfaces) of the automata toolkit.

These interfaces decouple the classification runner from external implementations,
allowing verdicts to be cached in process or in a shared backend.

# Key Interfaces

  - VerdictCache: Remembers accept/reject verdicts per automaton and word.

The tests subpackage holds RunVerdictCacheContract, a reusable suite that every
adapter runs in its own tests.
*/
package ports
