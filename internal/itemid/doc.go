/*
Package itemid provides stable, generated identifiers for registry items.

The canonical format is `kind[seq]`, e.g. `setup[3]` or `point[0]`. A
sequence number is handed out once per registry and never reused, so an
identifier keeps pointing at the same item while other items are added or
deleted around it.
*/
package itemid
