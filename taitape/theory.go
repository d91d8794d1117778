package taitape

const Theory = `
# Tape Memory

The tape is a row of byte cells addressed by one cursor. It starts as a single chunk
with the cursor in the middle and grows in whole chunks at whichever edge the cursor
walks off.

## Chunks
- A chunk is a fixed-length []byte allocated once and never resized, so a *byte taken
  from it stays valid while the tape lives.
- Chunks live in an arena ([]*chunk) and refer to each other by ChunkID, never by pointer.
  Inside a chunk neighbours are slice neighbours; across chunks they are prev/next ids.
- ID 0 is never allocated. A prev or next of 0 means "nothing allocated on this side".
  Each tape has its own arena, so two tapes never share an edge marker.

## Growth
- A unit step that would leave the edge chunk first allocates a new chunk of
  min(GrowCells, MaxCells-Total) cells and links it in, then moves into it.
- With no capacity left the step fails with ErrLimitExceeded and the cursor stays put.
  A multi-cell step stops at the failing unit step; cells already crossed stay crossed.

## Teardown
Release walks next ids from the leftmost chunk and drops each chunk once.
`
