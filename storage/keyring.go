package storage

import (
	"errors"

	"github.com/samber/mo"
	"github.com/themer-cli/themer/constant"
	"github.com/zalando/go-keyring"
)

// Keyring stores each key as a secret in the system keyring.
type Keyring struct {
	service string
}

func NewKeyring() *Keyring {
	return &Keyring{service: constant.KeyringService}
}

func (k *Keyring) Name() string { return BackendKeyring }

func (k *Keyring) Get(key string) (mo.Option[string], error) {
	value, err := keyring.Get(k.service, key)
	if errors.Is(err, keyring.ErrNotFound) {
		return mo.None[string](), nil
	}
	if err != nil {
		return mo.None[string](), err
	}
	return mo.Some(value), nil
}

func (k *Keyring) Set(key, value string) error {
	return keyring.Set(k.service, key, value)
}

func (k *Keyring) Delete(key string) error {
	err := keyring.Delete(k.service, key)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
