package gfxtest

// FakeSurface implements the loop's Surface interface. It reports a close
// request once CloseAfter frames have been presented.
type FakeSurface struct {
	CloseAfter int
	Swaps      int
	Polls      int
}

func (s *FakeSurface) ShouldClose() bool {
	return s.Swaps >= s.CloseAfter
}

func (s *FakeSurface) SwapBuffers() {
	s.Swaps++
}

func (s *FakeSurface) PollEvents() {
	s.Polls++
}
