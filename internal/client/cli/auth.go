package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/mantisworks/mantis-field/internal/common"
)

// Login authenticates against the gateway. When the gateway is unreachable it
// falls back to an offline PIN unlock of the cached session.
func (a *App) Login(ctx context.Context) {
	if !a.watcher.Online() {
		fmt.Fprintln(a.out, "Gateway unreachable, trying offline unlock.")
		a.Unlock(ctx)
		return
	}

	badge, err := GetSimpleText(a.reader, "Badge number", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}

	password, err := GetSecret("Password", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	defer common.WipeByteArray(password)

	if err := a.auth.OnlineLogin(ctx, badge, password); err != nil {
		fmt.Fprintln(a.out, "Login failed:", err)
		return
	}

	a.unlocked = true
	fmt.Fprintln(a.out, "Logged in.")

	if a.offerPin(ctx) {
		fmt.Fprintln(a.out, "Device PIN set. Use 'unlock' when out of coverage.")
	}
}

// offerPin proposes setting a device PIN right after the first login so
// offline unlock works later. Returns true when a PIN was set.
func (a *App) offerPin(ctx context.Context) bool {
	if !Confirm(a.reader, "Set a device PIN for offline unlock?", a.out) {
		return false
	}
	return a.setPin(ctx)
}

func (a *App) SetPin(ctx context.Context) {
	if !a.isUnlocked() {
		fmt.Fprintln(a.out, "Log in first.")
		return
	}
	if a.setPin(ctx) {
		fmt.Fprintln(a.out, "Device PIN updated.")
	}
}

func (a *App) setPin(ctx context.Context) bool {
	pin, err := GetSecret("New PIN", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return false
	}
	defer common.WipeByteArray(pin)

	if err := a.auth.SetDevicePin(ctx, pin); err != nil {
		fmt.Fprintln(a.out, "Failed to set PIN:", err)
		return false
	}
	return true
}

// Unlock restores the cached session with the device PIN, no network needed.
func (a *App) Unlock(ctx context.Context) {
	pin, err := GetSecret("Device PIN", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	defer common.WipeByteArray(pin)

	switch err := a.auth.OfflineUnlock(ctx, pin); {
	case err == nil:
		a.unlocked = true
		fmt.Fprintln(a.out, "Unlocked. Records will sync when back in coverage.")
	case errors.Is(err, common.ErrIncorrectPin):
		fmt.Fprintln(a.out, "Incorrect PIN.")
	case errors.Is(err, common.ErrNoCachedSession):
		fmt.Fprintln(a.out, "No cached session on this device; log in online first.")
	default:
		fmt.Fprintln(a.out, "Unlock failed:", err)
	}
}

func (a *App) Logout(ctx context.Context) {
	if err := a.auth.Logout(ctx); err != nil {
		fmt.Fprintln(a.out, "Logout failed:", err)
		return
	}
	a.unlocked = false
	fmt.Fprintln(a.out, "Logged out. Queued records stay on the device.")
}
