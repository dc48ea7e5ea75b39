package adventure

import (
	"strconv"

	"github.com/vancomm/bombsaway/internal/abilities"
	"github.com/zyedidia/generic/mapset"
)

type ItemType string

const (
	ChargeItem  ItemType = "charge"
	UpgradeItem ItemType = "upgrade"
	PerkItem    ItemType = "perk"
)

type Perk string

const (
	ScrapPerk     Perk = "scrap"
	ScoutPerk     Perk = "scout"
	SensePerk     Perk = "sense"
	OverclockPerk Perk = "overclock"
	DefusePerk    Perk = "defuse"
)

type Item struct {
	Key     string         `json:"key"`
	Type    ItemType       `json:"type"`
	Ability abilities.Kind `json:"ability,omitempty"`
	Perk    Perk           `json:"perk,omitempty"`
	Amount  int            `json:"amount"`
	Title   string         `json:"title"`
	Cost    int            `json:"cost"`
	Rarity  string         `json:"rarity"`
}

func charge(kind abilities.Kind, amount, cost int, rarity, title string) Item {
	return Item{
		Key:     "charge:" + string(kind) + ":" + strconv.Itoa(amount),
		Type:    ChargeItem,
		Ability: kind,
		Amount:  amount,
		Title:   title,
		Cost:    cost,
		Rarity:  rarity,
	}
}

// Catalog lists every item the shop can stock.
var Catalog = []Item{
	charge(abilities.Scan, 1, 3, "common", "+1 Scan"),
	charge(abilities.Reveal, 1, 3, "common", "+1 Reveal"),
	charge(abilities.Flag, 1, 3, "common", "+1 Flag"),
	charge(abilities.Shield, 1, 3, "common", "+1 Shield"),
	charge(abilities.Echo, 1, 3, "common", "+1 Echo"),
	charge(abilities.Scan, 2, 5, "rare", "+2 Scan"),
	charge(abilities.Reveal, 2, 5, "rare", "+2 Reveal"),
	charge(abilities.Flag, 2, 5, "rare", "+2 Flag"),
	charge(abilities.Shield, 2, 5, "rare", "+2 Shield"),
	charge(abilities.Echo, 2, 5, "rare", "+2 Echo"),
	{Key: "upgrade:scan:1", Type: UpgradeItem, Ability: abilities.Scan, Amount: 1, Title: "Scan Upgrade", Cost: 5, Rarity: "rare"},
	{Key: "upgrade:scan:2", Type: UpgradeItem, Ability: abilities.Scan, Amount: 2, Title: "Scan Upgrade II", Cost: 8, Rarity: "epic"},
	{Key: "perk:scrap:2", Type: PerkItem, Perk: ScrapPerk, Amount: 2, Title: "Scrap Magnet", Cost: 6, Rarity: "rare"},
	{Key: "perk:scout:1", Type: PerkItem, Perk: ScoutPerk, Amount: 1, Title: "Step Scout", Cost: 6, Rarity: "rare"},
	{Key: "perk:sense:1", Type: PerkItem, Perk: SensePerk, Amount: 1, Title: "Bomb Sense", Cost: 7, Rarity: "epic"},
	{Key: "perk:overclock:1", Type: PerkItem, Perk: OverclockPerk, Amount: 1, Title: "Overclock", Cost: 5, Rarity: "rare"},
	{Key: "perk:defuse:1", Type: PerkItem, Perk: DefusePerk, Amount: 1, Title: "Defuse Kit", Cost: 7, Rarity: "rare"},
}

func findItem(items []Item, key string) (Item, bool) {
	for _, it := range items {
		if it.Key == key {
			return it, true
		}
	}
	return Item{}, false
}

// drawOffer shuffles a copy of the catalog and keeps the first n items.
func (r *Run) drawOffer() {
	items := make([]Item, len(Catalog))
	copy(items, Catalog)
	for i := len(items) - 1; i > 0; i-- {
		j := r.rnd.IntN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
	r.offer = items[:min(r.settings.ShopSize, len(items))]
	r.purchased = mapset.New[string]()
}

// Offer is the current shop stock.
func (r *Run) Offer() []Item {
	return r.offer
}

func (r *Run) Purchased(key string) bool {
	return r.purchased.Has(key)
}

// Buy spends scrap on an offered item. Each item can be bought once per
// offer.
func (r *Run) Buy(key string) error {
	if r.phase != Shopping {
		return ErrShopClosed
	}
	item, ok := findItem(r.offer, key)
	if !ok {
		return ErrNotOffered
	}
	if r.purchased.Has(key) {
		return ErrSoldOut
	}
	if r.scrap < item.Cost {
		return ErrNotEnoughScrap
	}

	switch item.Type {
	case ChargeItem:
		if err := r.abilities.AddCharges(item.Ability, item.Amount); err != nil {
			return err
		}
	case UpgradeItem:
		r.abilities.UpgradeScan(item.Amount)
	case PerkItem:
		r.applyPerk(item.Perk, item.Amount)
	}
	r.scrap -= item.Cost
	r.purchased.Put(key)

	r.log().WithField("item", key).Debug("item bought")
	return nil
}

func (r *Run) applyPerk(perk Perk, amount int) {
	switch perk {
	case ScrapPerk:
		r.scrapBonus += amount
	case ScoutPerk:
		r.scoutReveals += amount
	case SensePerk:
		r.bombSense += amount
	case OverclockPerk:
		r.overclockNext = true
	case DefusePerk:
		r.defuseKits += amount
	}
}

// Reroll spends scrap on a fresh offer.
func (r *Run) Reroll() error {
	if r.phase != Shopping {
		return ErrShopClosed
	}
	if r.scrap < r.settings.RerollCost {
		return ErrNotEnoughScrap
	}
	r.scrap -= r.settings.RerollCost
	r.rerolls++
	r.drawOffer()
	return nil
}
