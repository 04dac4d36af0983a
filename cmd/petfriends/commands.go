/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unikorn-cloud/petfriends/pkg/petfriends"
)

var ErrFilter = errors.New("filter must be empty or my_pets")

func newKeyCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "key EMAIL PASSWORD",
		Short: "Exchange credentials for an API key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}

			response, err := client.GetAPIKey(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			return report(cmd, response)
		},
	}
}

func newListCommand(a *app) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch petfriends.Filter(filter) {
			case petfriends.FilterAll, petfriends.FilterMyPets:
			default:
				return fmt.Errorf("%w: %q", ErrFilter, filter)
			}

			key, err := a.key()
			if err != nil {
				return err
			}

			client, err := a.client()
			if err != nil {
				return err
			}

			response, err := client.GetListOfPets(cmd.Context(), key, petfriends.Filter(filter))
			if err != nil {
				return err
			}

			return report(cmd, response)
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "Set to my_pets to list only your pets")

	return cmd
}

func newAddCommand(a *app) *cobra.Command {
	var photo string

	cmd := &cobra.Command{
		Use:   "add NAME ANIMAL_TYPE AGE",
		Short: "Create a pet",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := a.key()
			if err != nil {
				return err
			}

			client, err := a.client()
			if err != nil {
				return err
			}

			var response *petfriends.Response[petfriends.Pet]

			if photo != "" {
				response, err = client.AddNewPet(cmd.Context(), key, args[0], args[1], args[2], photo)
			} else {
				response, err = client.AddNewPetWithoutPhoto(cmd.Context(), key, args[0], args[1], args[2])
			}

			if err != nil {
				return err
			}

			return report(cmd, response)
		},
	}

	cmd.Flags().StringVar(&photo, "photo", "", "Path to a photo to upload with the pet")

	return cmd
}

func newSetPhotoCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set-photo PET_ID PHOTO",
		Short: "Attach a photo to a pet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := a.key()
			if err != nil {
				return err
			}

			client, err := a.client()
			if err != nil {
				return err
			}

			response, err := client.AddPhotoOfPet(cmd.Context(), key, args[0], args[1])
			if err != nil {
				return err
			}

			return report(cmd, response)
		},
	}
}

func newUpdateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "update PET_ID NAME ANIMAL_TYPE AGE",
		Short: "Replace a pet's name, type and age",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := a.key()
			if err != nil {
				return err
			}

			client, err := a.client()
			if err != nil {
				return err
			}

			response, err := client.UpdatePetInfo(cmd.Context(), key, args[0], args[1], args[2], args[3])
			if err != nil {
				return err
			}

			return report(cmd, response)
		},
	}
}

func newDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete PET_ID",
		Short: "Delete a pet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := a.key()
			if err != nil {
				return err
			}

			client, err := a.client()
			if err != nil {
				return err
			}

			response, err := client.DeletePet(cmd.Context(), key, args[0])
			if err != nil {
				return err
			}

			return report(cmd, response)
		},
	}
}
