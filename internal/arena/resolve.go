package arena

import (
	"strandsim/internal/ability"
	"strandsim/internal/combat"
)

// activate spends the caster's charge and applies the ultimate's payload.
// Payloads land once, on the activation tick; the records that follow only
// keep the same kind from firing again while they live.
func (w *World) activate(c *combat.Strand, spec ability.Spec) {
	now := w.env.Time
	c.UltimateCharge = 0
	c.UltimateCooldown = now + spec.Cooldown
	w.casts[spec.Kind]++

	life := combat.TicksFor(spec.Duration)
	allies, enemies := combat.Partition(c, w.env.Strands, w.env.Relations)
	inAllies := combat.Within(c.Pos, allies, spec.Radius)
	inEnemies := combat.Within(c.Pos, enemies, spec.Radius)
	rec := combat.ActiveUltimate{
		Kind: spec.Kind, CasterID: c.ID, Pos: c.Pos, Radius: spec.Radius,
		Life: life, MaxLife: life,
	}

	switch spec.Kind {
	case combat.UltSanctuary, combat.UltVerdantBloom, combat.UltHeartline:
		c.Heal(spec.Power)
		for _, a := range inAllies {
			a.Heal(spec.Power)
		}
	case combat.UltFissure, combat.UltEntropyWave:
		for _, e := range inEnemies {
			w.damage(e, spec.Power, c)
		}
	case combat.UltRadiantSurge:
		for _, a := range inAllies {
			a.UltimateCharge = min(a.MaxUltimateCharge, a.UltimateCharge+spec.Power*a.MaxUltimateCharge)
		}
	case combat.UltChallenge:
		if target, ok := ability.DuelTarget(c, w.view()); ok {
			rec.TargetID = target.ID
			w.damage(target, spec.Power, c)
		}
	case combat.UltSystemCrash:
		for _, e := range enemies {
			e.AddDebuff(combat.DebuffCrash, spec.Power, spec.Duration, now)
		}
		w.Globals = append(w.Globals, combat.GlobalEffect{
			Kind: combat.GlobalSystemCrash, CasterID: c.ID, CasterName: c.Name,
			Life: life, MaxLife: life,
		})
	}
	if spec.Kind != combat.UltSystemCrash {
		w.Ultimates = append(w.Ultimates, rec)
	}

	w.log.Info().
		Str("caster", string(c.Name)).
		Stringer("ultimate", spec.Kind).
		Float64("t", now).
		Int("allies", len(inAllies)).
		Int("enemies", len(inEnemies)).
		Msg("ultimate activated")
	w.emit("Ultimate", map[string]any{
		"caster": c.ID, "kind": spec.Kind.String(), "x": c.Pos.X, "y": c.Pos.Y, "target": rec.TargetID,
	})
	w.logLine("ultimate", c.ID, "%s unleashes %s!", c.Name, spec.Kind)
}

// damage is the only path that can defeat a strand.
func (w *World) damage(target *combat.Strand, amount float64, source *combat.Strand) {
	if !target.Damage(amount) {
		w.emit("Hit", map[string]any{"target": target.ID, "source": source.ID, "dmg": amount, "hp": target.Health})
		return
	}
	w.defeated = append(w.defeated, target.Name)
	w.log.Info().
		Str("strand", string(target.Name)).
		Str("by", string(source.Name)).
		Float64("t", w.env.Time).
		Msg("strand defeated")
	w.emit("Defeat", map[string]any{"id": target.ID, "by": source.ID})
	w.logLine("system", target.ID, "%s is defeated by %s.", target.Name, source.Name)
}
