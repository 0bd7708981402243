package ability

import "strandsim/internal/combat"

var (
	healAllyCount   = tiers[int]{3, 2, 1}
	lowAllyRatio    = 0.6
	damageCount     = tiers[int]{3, 2, 1}
	fissureCount    = tiers[int]{4, 3, 2}
	fissureCohesion = 0.75

	crashDamagedRatio = 0.8
	crashDamaged      = tiers[int]{3, 2, 1}

	surgeChargeFrac = tiers[float64]{0.3, 0.5, 0.75}
	surgeAllies     = tiers[int]{2, 2, 1}

	comebackGap  = tiers[float64]{0.6, 0.8, 0.95}
	comebackSelf = tiers[float64]{0.4, 0.6, 0.8}

	duelSelfFloor    = tiers[float64]{0.7, 0.5, 0.3}
	duelEnemyCeiling = tiers[float64]{0.4, 0.6, 0.9}
	duelReach        = 1.5
)

// Sanctuary: enough allies gathered around the caster.
func sanctuaryGate(c *combat.Strand, v View) bool {
	if v.ultimateActive(combat.UltSanctuary) {
		return false
	}
	allies, _ := v.partition(c)
	n := len(combat.Within(c.Pos, allies, specs[combat.UltSanctuary].Radius))
	return n >= healAllyCount.at(v.Aggression)
}

// Verdant bloom: enough hurt allies around the caster.
func verdantBloomGate(c *combat.Strand, v View) bool {
	if v.ultimateActive(combat.UltVerdantBloom) {
		return false
	}
	allies, _ := v.partition(c)
	n := 0
	for _, a := range combat.Within(c.Pos, allies, specs[combat.UltVerdantBloom].Radius) {
		if a.HealthRatio() < lowAllyRatio {
			n++
		}
	}
	return n >= healAllyCount.at(v.Aggression)
}

// Fissure needs a tight cluster: mean pairwise spacing under 0.75x radius.
func fissureGate(c *combat.Strand, v View) bool {
	if v.ultimateActive(combat.UltFissure) {
		return false
	}
	radius := specs[combat.UltFissure].Radius
	_, enemies := v.partition(c)
	in := combat.Within(c.Pos, enemies, radius)
	if len(in) < fissureCount.at(v.Aggression) || len(in) < 2 {
		return false
	}
	return meanSpacing(in) < fissureCohesion*radius
}

func entropyWaveGate(c *combat.Strand, v View) bool {
	if v.ultimateActive(combat.UltEntropyWave) {
		return false
	}
	_, enemies := v.partition(c)
	n := len(combat.Within(c.Pos, enemies, specs[combat.UltEntropyWave].Radius))
	return n >= damageCount.at(v.Aggression)
}

// System crash is arena-wide. Outside aggressive mode it waits for a healer to punish.
func systemCrashGate(c *combat.Strand, v View) bool {
	if v.globalActive(combat.GlobalSystemCrash) {
		return false
	}
	_, enemies := v.partition(c)
	damaged := 0
	healer := false
	for _, e := range enemies {
		if e.HealthRatio() < crashDamagedRatio {
			damaged++
		}
		if combat.IsHealer(e.Name) {
			healer = true
		}
	}
	if damaged < crashDamaged.at(v.Aggression) {
		return false
	}
	return v.Aggression == combat.Aggressive || healer
}

// Radiant surge: an enemy is close and enough of the team is short on charge.
func radiantSurgeGate(c *combat.Strand, v View) bool {
	if v.ultimateActive(combat.UltRadiantSurge) {
		return false
	}
	allies, enemies := v.partition(c)
	if len(combat.Within(c.Pos, enemies, specs[combat.UltRadiantSurge].Radius)) == 0 {
		return false
	}
	frac := surgeChargeFrac.at(v.Aggression)
	low := 0
	if c.ChargeRatio() < frac {
		low++
	}
	for _, a := range allies {
		if a.ChargeRatio() < frac {
			low++
		}
	}
	return low >= surgeAllies.at(v.Aggression)
}

// Heartline is a comeback: the team is behind and the caster is hurt.
func heartlineGate(c *combat.Strand, v View) bool {
	if v.ultimateActive(combat.UltHeartline) {
		return false
	}
	allies, enemies := v.partition(c)
	if len(enemies) == 0 {
		return false
	}
	team := meanHealth(allies, c)
	foes := meanHealth(enemies, nil)
	return team < foes*comebackGap.at(v.Aggression) && c.HealthRatio() < comebackSelf.at(v.Aggression)
}

func challengeGate(c *combat.Strand, v View) bool {
	if v.ultimateActive(combat.UltChallenge) {
		return false
	}
	_, ok := DuelTarget(c, v)
	return ok
}

// DuelTarget picks the nearest enemy weak enough to challenge, provided the
// caster is healthy enough and the enemy is within reach.
func DuelTarget(c *combat.Strand, v View) (*combat.Strand, bool) {
	if c.HealthRatio() < duelSelfFloor.at(v.Aggression) {
		return nil, false
	}
	ceiling := duelEnemyCeiling.at(v.Aggression)
	_, enemies := v.partition(c)
	var weak []*combat.Strand
	for _, e := range enemies {
		if e.HealthRatio() < ceiling {
			weak = append(weak, e)
		}
	}
	target, d2 := combat.Nearest(c.Pos, weak)
	if target == nil {
		return nil, false
	}
	reach := duelReach * specs[combat.UltChallenge].Radius
	if d2 > reach*reach {
		return nil, false
	}
	return target, true
}

func meanSpacing(ss []*combat.Strand) float64 {
	sum, n := 0.0, 0
	for i := 0; i < len(ss); i++ {
		for j := i + 1; j < len(ss); j++ {
			sum += combat.Dist(ss[i].Pos, ss[j].Pos)
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func meanHealth(ss []*combat.Strand, extra *combat.Strand) float64 {
	sum, n := 0.0, 0
	for _, s := range ss {
		sum += s.HealthRatio()
		n++
	}
	if extra != nil {
		sum += extra.HealthRatio()
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
