package model

// EnemyType identifies a kind of enemy. The scheduler treats it as an
// opaque key; the Enemy Registry decides what it means.
type EnemyType string
