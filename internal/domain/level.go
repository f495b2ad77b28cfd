package domain

// LevelInfo describes where an XP total sits on the level curve.
type LevelInfo struct {
	Level         int
	XPToNextLevel int
	LevelStartXP  int
	NextLevelXP   int
}

// levelGap is the XP needed to go from level n to n+1, divided by n.
const levelGap = 100

// LevelThreshold returns the cumulative XP at which level n starts.
// Level 1 starts at 0; the gap from n to n+1 is 100*n.
func LevelThreshold(n int) int {
	if n <= 1 {
		return 0
	}
	return levelGap * n * (n - 1) / 2
}

// LevelFor maps cumulative XP to a level. Negative XP is treated as 0.
func LevelFor(xp int) LevelInfo {
	if xp < 0 {
		xp = 0
	}

	level := 1
	for LevelThreshold(level+1) <= xp {
		level++
	}

	next := LevelThreshold(level + 1)
	return LevelInfo{
		Level:         level,
		XPToNextLevel: next - xp,
		LevelStartXP:  LevelThreshold(level),
		NextLevelXP:   next,
	}
}
