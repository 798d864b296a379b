package jobs

var ticks int

//actiongen:action
func tick() error {
	ticks++
	return nil
}
