package component

// Wall marks a static obstacle. Its box is the entity's Collider.
type Wall struct{}
