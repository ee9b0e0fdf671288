package melee

type matchup struct {
	p1, p2 Character
}

// Character/stage combinations that run out of memory when the emulator is
// in fast-forward mode.
var badFastForward = map[matchup][]Stage{
	{Fox, Fox}:                  {YoshisStory},
	{Fox, Falco}:                {YoshisStory},
	{Fox, Marth}:                {YoshisStory},
	{Fox, Sheik}:                {YoshisStory},
	{Fox, CaptainFalcon}:        {YoshisStory},
	{Fox, Jigglypuff}:           {YoshisStory},
	{Fox, Peach}:                {YoshisStory},
	{Falco, Sheik}:              {YoshisStory},
	{Falco, CaptainFalcon}:      {YoshisStory},
	{CaptainFalcon, Fox}:        {FinalDestination, FountainOfDreams},
	{CaptainFalcon, Falco}:      {FinalDestination, FountainOfDreams},
	{CaptainFalcon, Marth}:      {FinalDestination, FountainOfDreams},
	{CaptainFalcon, Sheik}:      {FinalDestination, FountainOfDreams},
	{CaptainFalcon, Jigglypuff}: {FinalDestination, FountainOfDreams},
	{CaptainFalcon, Peach}:      {FinalDestination, FountainOfDreams},
}

// BadFastForward reports whether p1 vs p2 on stage is known to crash in
// fast-forward mode. A random stage is bad if any stage is bad for the pair.
func BadFastForward(p1, p2 Character, stage Stage) bool {
	stages, ok := badFastForward[matchup{p1, p2}]
	if !ok {
		return false
	}
	if stage == RandomStage {
		return true
	}
	for _, s := range stages {
		if s == stage {
			return true
		}
	}
	return false
}
