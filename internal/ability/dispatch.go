package ability

import "strandsim/internal/combat"

// For returns the gate and tuning of a character's ultimate. Characters
// without an ultimate report ok=false.
func For(name combat.Name) (gate Gate, spec Spec, ok bool) {
	switch name {
	case combat.Solace:
		return sanctuaryGate, specs[combat.UltSanctuary], true
	case combat.Elowen:
		return verdantBloomGate, specs[combat.UltVerdantBloom], true
	case combat.Bastion:
		return fissureGate, specs[combat.UltFissure], true
	case combat.Omen:
		return entropyWaveGate, specs[combat.UltEntropyWave], true
	case combat.Vex:
		return systemCrashGate, specs[combat.UltSystemCrash], true
	case combat.Lumen:
		return radiantSurgeGate, specs[combat.UltRadiantSurge], true
	case combat.Mira:
		return heartlineGate, specs[combat.UltHeartline], true
	case combat.Riposte:
		return challengeGate, specs[combat.UltChallenge], true
	case combat.Kestrel, combat.Reverie, combat.Sage, combat.Arbiter, combat.Nyx, combat.Ariadne:
		return nil, Spec{}, false
	}
	return nil, Spec{}, false
}

// ShouldActivate routes the caster to its own gate.
func ShouldActivate(caster *combat.Strand, v View) bool {
	if !caster.Active() {
		return false
	}
	gate, _, ok := For(caster.Name)
	if !ok {
		return false
	}
	return gate(caster, v)
}
